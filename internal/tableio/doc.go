// Package tableio loads the four graph tables from disk into an
// inmemorystore.Store.
//
// Tables are sequences of row objects whose keys are column names. The file
// extension selects the encoding: `.jsonl`/`.ndjson` (one JSON object per
// line), `.json` (a JSON array of objects) or `.msgpack`/`.mp` (a MessagePack
// array of maps). Every failure is reported as a *graphstore.DataLoadError
// naming the table and path.
package tableio
