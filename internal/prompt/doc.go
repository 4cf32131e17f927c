// Package prompt implements line-oriented console input: a cancellable line
// reader and the bounded numeric prompt that keeps asking until the user
// types a number inside the accepted range.
//
// Reading never fails because of bad input. The only errors a caller sees
// wrap ErrInterrupted, returned when the context is cancelled or the input
// stream ends.
package prompt
