// Package bayes scores a query frequency table against per-language
// frequency profiles.
//
// Gaussian is a naive Bayes classifier with one normal distribution per
// language and feature, estimated from per-file samples. Difference is the
// lighter frequency-difference scorer. Both return scores normalized to
// [0,1] by the best language.
package bayes
