// Package loader builds a frozen core.Graph from a CSV route dataset.
//
// Schema
//
// The first row is a header. Columns are matched by name, case-insensitively:
//
//	origin_airport_code | origin       origin code (required)
//	destination_airport_code | destination
//	                                   destination code (required)
//	distance                           route weight in miles (optional)
//	origin_airport, origin_airport_id, origin_city, origin_country,
//	origin_airport_latitude, origin_airport_longitude and the matching
//	destination_* columns              airport attributes (optional)
//
// Without a distance column the weight is the great-circle distance in miles
// between the two airports' coordinates, which then become required.
//
// Policy
//
//   - One row is one directed route. WithBidirectional(true) also adds the
//     reverse route unless the dataset already lists it.
//   - An airport is created the first time it is seen; later rows do not
//     change its attributes.
//   - A malformed row (missing field, bad number, negative distance,
//     duplicate route, self-loop) is skipped. It is recorded in the Report as
//     a RowError, logged as a warning, and the load continues.
//   - A missing header or required column aborts the load with ErrHeader.
package loader
