// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ArchivedCycle is the predicate function for archivedcycle builders.
type ArchivedCycle func(*sql.Selector)

// Block is the predicate function for block builders.
type Block func(*sql.Selector)

// Crop is the predicate function for crop builders.
type Crop func(*sql.Selector)

// Farm is the predicate function for farm builders.
type Farm func(*sql.Selector)

// Harvest is the predicate function for harvest builders.
type Harvest func(*sql.Selector)

// PhysicalBlock is the predicate function for physicalblock builders.
type PhysicalBlock func(*sql.Selector)

// PriceRecord is the predicate function for pricerecord builders.
type PriceRecord func(*sql.Selector)
