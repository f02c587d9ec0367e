// Package rowkit provides helper operations over in-memory collections of
// schemaless records: filtering, in-place update and erase, stable
// multi-key sorting, pivot aggregation, and small projection helpers.
//
// All operations are synchronous, stateless functions over a
// record.Collection. Filter, Sort, Pivot and Summary return new sequences;
// Update, Erase and Transform mutate the caller's collection in place. No
// operation produces partial output: a failure aborts the whole call.
//
// # Example
//
//	rows, err := tabular.ParseString(csvText)
//	if err != nil { ... }
//
//	fruit, err := rowkit.Filter(rows, record.Criteria{
//	    "category": record.String("Fruit"),
//	})
//	if err != nil { ... }
//
//	byItem, err := rowkit.Pivot(fruit, "category", "item", "quantity")
//	if err != nil { ... }
//
// # Subpackages
//
//   - record: the typed data model (Value, Record, Collection, Criteria)
//   - tabular: line-delimited (CSV) parser and serializer
//   - codec: structured serialization (JSON, YAML)
//   - blobstore: injectable byte stores (memory, local disk, MinIO/S3)
//   - tableio: path-oriented reading and writing over a blobstore
package rowkit
