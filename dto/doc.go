// Package dto holds plain Go counterparts of the acme.orders.v1 protobuf
// messages. They are the targets the pair command and the pairing tests
// match wire properties against.
package dto
