package models

// StreamRequest describes a request for a finite stream of combined results
type StreamRequest struct {
	Amount int // Exact number of results to produce; values <= 0 produce an empty stream
}
