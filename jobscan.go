// Package jobscan extracts resume-relevant structured content from
// job-posting URLs. It fetches a posting page, recovers clean job text
// through an ordered chain of extraction strategies (Schema.org JobPosting
// JSON-LD, site-specific and generic HTML heuristics, boilerplate-stripping
// fallbacks), and produces a frequency-ranked ATS keyword list.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, trafilatura/, gemini/).
package jobscan
