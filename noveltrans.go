// Package noveltrans extracts web-novel chapters from raw HTML and
// translates them through a remote LLM generation call. It locates a
// chapter's title, body and neighboring-chapter links using prioritized
// selector rule sets, bounds the body to a word budget, and wraps the
// generation call with classified, exponentially backed-off retries.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., gemini/,
// goquery/, http/) or their concern (crawl/, translate/).
package noveltrans
