package models

import "time"

type QuoteStatus string

const (
	QuotePending  QuoteStatus = "pending"
	QuoteReviewed QuoteStatus = "reviewed"
	QuoteQuoted   QuoteStatus = "quoted"
	QuoteClosed   QuoteStatus = "closed"
)

// Quote is a free-form project inquiry, optionally carrying uploaded
// reference files. Optional fields are pointers without omitempty so that
// "not provided" persists as an explicit null rather than a missing key.
type Quote struct {
	QuoteID            string      `json:"quoteId" bson:"quoteId"`
	CustomerName       string      `json:"customerName" bson:"customerName"`
	CustomerEmail      string      `json:"customerEmail" bson:"customerEmail"`
	CustomerPhone      *string     `json:"customerPhone" bson:"customerPhone"`
	Company            *string     `json:"company" bson:"company"`
	ProjectDescription string      `json:"projectDescription" bson:"projectDescription"`
	Quantity           *int        `json:"quantity" bson:"quantity"`
	Deadline           *string     `json:"deadline" bson:"deadline"`
	FileURLs           []string    `json:"fileUrls" bson:"fileUrls"`
	Status             QuoteStatus `json:"status" bson:"status"`
	CreatedAt          time.Time   `json:"createdAt" bson:"createdAt"`
}
