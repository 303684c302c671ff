// Package repo holds the ent-generated database client. The generated
// code is not committed; run go generate before building.
package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . --feature sql/upsert ../schema
