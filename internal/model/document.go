package model

import "time"

// Clause is a named block of contract text a user selects to append to the
// assembled document
type Clause struct {
	ID      string `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
	Custom  bool   `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// DraftRecord is the complete output of one draft run
type DraftRecord struct {
	Type      ContractType    `json:"type"`
	Language  Language        `json:"language"`
	Document  string          `json:"document"`           // assembled contract text
	Summary   string          `json:"summary"`            // short natural-language summary
	Details   ContractDetails `json:"details"`            // extracted fields
	Clauses   []Clause        `json:"clauses,omitempty"`  // clauses included in the document
	Missing   []string        `json:"missing,omitempty"`  // mandatory clauses not included
	Generator string          `json:"generator"`          // provider that produced the document
	Model     string          `json:"model,omitempty"`    // generation model, if any
	CreatedAt time.Time       `json:"created_at"`
}

// SavedContract is a persisted draft as stored in the contract store
type SavedContract struct {
	ID        int64        `json:"id"`
	Type      ContractType `json:"type"`
	Language  Language     `json:"language"`
	Content   string       `json:"content"`
	Summary   string       `json:"summary,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}
