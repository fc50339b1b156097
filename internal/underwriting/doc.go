// Package underwriting computes financing, operating expenses, four-component
// returns, low/mid/high scenarios and optimization plans for rental properties.
//
// Every function in this package is a pure computation over its arguments:
// nothing logs, performs I/O or reads process-wide state, so independent
// properties can be analyzed concurrently without synchronization.
package underwriting
