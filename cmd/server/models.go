package main

import (
	"github.com/VpkDevs/Tax-Filing-Tool/history"
)

// API request and response models

// CalculateRequest is the body for POST /api/calculate. Memory is the
// client-held calculator memory cell, consulted only by the MC/MR/M+/M-
// pseudo-operations.
type CalculateRequest struct {
	Expression string   `json:"expression"`
	Memory     *float64 `json:"memory,omitempty"`
}

// CalculateResponse carries the formatted result: a string for scalars, a
// structured object for multi-field analyses. Memory echoes the updated
// memory cell when the request carried one.
type CalculateResponse struct {
	Result any      `json:"result"`
	Memory *float64 `json:"memory,omitempty"`
}

// CalcErrorResponse is the 400 body for failed evaluations.
type CalcErrorResponse struct {
	Error string `json:"error"`
	Type  string `json:"type"`
}

// HistoryResponse is the body for GET /api/history.
type HistoryResponse struct {
	History []*history.Record `json:"history"`
}
