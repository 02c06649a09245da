// Package agent implements the query dispatcher: it routes each customer query
// to the balance, knowledge or general handler, and keeps usage counters and a
// short in-memory history.
//
// ProcessQuery never returns an error and never panics. Every failure is
// reported inside the QueryResult.
package agent
