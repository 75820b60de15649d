// Package ingest builds catalogs from remote dyno run sheets.
//
// A run sheet is a wide CSV: an RPM column followed by one column per
// recorded attribute. Not every entry has every attribute recorded, so
// unknown columns and empty cells are tolerated; malformed numbers are not.
//
// Fetcher downloads run sheets by run ID with a shared rate limit and a
// bounded number of in-flight requests, then assembles a Catalog in input
// order. Ingestion is fail-fast: one bad run sheet aborts the whole fetch,
// matching the load-time data error policy of the catalog builder.
package ingest
