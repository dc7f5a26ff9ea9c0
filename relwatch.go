// Package relwatch extracts dated, categorized release notes from
// documentation pages and renders them as text, Markdown, JSON, or HTML.
// It recognizes dates in loosely structured markup, groups following
// content under the right date, classifies each fragment into a change
// category, and filters the result by a rolling time window.
//
// This package contains domain types, pure extraction logic (dates,
// categories, platform profiles), and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, yaml/).
package relwatch
