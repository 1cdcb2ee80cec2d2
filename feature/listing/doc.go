// Package listing serves the dashboard's list pages: customers, agencies,
// hotels, appointments, orders, staff, and transactions.
//
// Every page shares the same pipeline: the repository loads the full
// collection and flattens the rows into loosely typed records, the shared
// table view engine (core/tableview) applies the request's search term and
// sort selection, and the handler returns the derived view together with the
// active sort descriptor.
//
// # HTTP Endpoints
//
//   - GET    /listing : available record types.
//   - GET    /listing/:entity : filtered-and-sorted view (?q=, ?sort=, ?dir=).
//   - POST   /listing/:entity/export : stores the view as CSV in the export bucket.
//   - GET    /listing/:entity/exports : stored exports of the entity.
//   - GET    /listing/:entity/exports/download : content of one export (?object=).
//   - DELETE /listing/:entity/exports : remove one export (?object=).
package listing
