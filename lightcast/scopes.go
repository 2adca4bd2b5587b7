package lightcast

// OAuth scopes by API family. The open taxonomy APIs (titles, skills) share
// the emsi_open scope; every premium family requires its own.
const (
	ScopeOpen           = "emsi_open"
	ScopeClassification = "classification_api"
	ScopeSimilarity     = "similarity"
	ScopeBenchmark      = "occupation-benchmark"
	ScopePathways       = "career-pathways"
	ScopePostingsUS     = "postings:us"
)
