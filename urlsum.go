// Package urlsum summarizes web pages. It fetches a URL, extracts the
// paragraph text, summarizes it in word-bounded chunks with a language
// model, and formats the combined summary into readable sentences.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., gemini/, goquery/, sqlite/).
package urlsum

// SummaryFileName is the file name offered for downloading a formatted summary.
const SummaryFileName = "Formatted-Summary-By-GSV.txt"
