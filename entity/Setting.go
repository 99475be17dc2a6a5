package entity

// Setting is a raw key→value row, the sqlite stand-in for the browser's
// key-value storage. The runtime app config lives under a single key as a
// JSON blob.
type Setting struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `json:"value"`
}
