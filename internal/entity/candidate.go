package entity

// Candidate is a post scored against a query embedding by the vector store.
// Score is a cosine-type similarity in [0,1]. Transient, never persisted.
type Candidate struct {
	Post  *Post
	Score float64
}
