// Package parse parses solver input: DIMACS CNF text, and the EUF
// input language of equality literals over ground terms.
package parse
