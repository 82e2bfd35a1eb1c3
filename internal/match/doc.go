// Package match ranks wire properties as candidates for plain Go fields.
//
// Key functions:
//   - NormalizeIdent: folds orderId, OrderID and order_id to one form
//   - LevenshteinNormalized: edit-distance similarity in [0, 1]
//   - ScoreTypeCompatibility: compares a Java accessor type with a Go type
//   - RankCandidates: orders wire properties for one target field
package match
