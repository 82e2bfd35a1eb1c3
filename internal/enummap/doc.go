// Package enummap maps wire-format enum constants to their plain-object
// counterparts.
//
// Protobuf style prefixes every constant with the enum name in
// UPPER_SNAKE_CASE and reserves the zero value (STATUS_UNSPECIFIED) and the
// runtime sentinel UNRECOGNIZED for "no value". The Mapper strips the
// prefix, maps the reserved constants to Absent, and can synthesize the
// zero constant back when an absent value is re-encoded.
//
// The absent postfix defaults to UNSPECIFIED and can be overridden per
// qualified-name prefix with an OverrideTable parsed from
// "com.example.pkg=UNKNOWN,com.example.Other=NONE".
package enummap
