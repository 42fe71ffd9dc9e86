// Package mapping provides the YAML request file used for batch generation.
//
// A request file pins every input of a generated method so a whole set of
// mappers can be regenerated deterministically.
//
// # Schema Overview
//
//	version: "1"
//	defaults:
//	  style: builder       # builder | direct
//	  policy: flexible     # strict | flexible
//	  dialect: go          # java | go
//	  in_place: false
//	  packages: [./store, ./warehouse]
//	requests:
//	  - method: CustomerToWarehouse
//	    source: store.Customer          # fields discovered from packages
//	    destination:
//	      name: warehouse.Customer
//	      fields: [ID, Email, Phone]    # explicit field list
//	    style: direct                   # per-request override
//
// A type given as a plain string has its fields discovered by a
// FieldResolver (the analyze catalog of the default packages). A type given
// as a mapping with a fields list is used as is; "fields: []" declares a
// type without fields.
//
// # Priority Order
//
// Options are taken from the request when set, then from defaults, then
// from the zero values (builder, strict, java, not in place).
package mapping
