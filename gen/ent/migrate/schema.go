// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArchivedCyclesColumns holds the columns for the "archived_cycles" table.
	ArchivedCyclesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "farm_id", Type: field.TypeUUID},
		{Name: "legacy_code", Type: field.TypeString, Unique: true},
		{Name: "crop_name", Type: field.TypeString, Nullable: true},
		{Name: "planting_date", Type: field.TypeTime},
		{Name: "cleared_date", Type: field.TypeTime, Nullable: true},
		{Name: "yield_kg", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "block_id", Type: field.TypeUUID},
	}
	// ArchivedCyclesTable holds the schema information for the "archived_cycles" table.
	ArchivedCyclesTable = &schema.Table{
		Name:       "archived_cycles",
		Columns:    ArchivedCyclesColumns,
		PrimaryKey: []*schema.Column{ArchivedCyclesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "archived_cycles_blocks_archived_cycles",
				Columns:    []*schema.Column{ArchivedCyclesColumns[8]},
				RefColumns: []*schema.Column{BlocksColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "archivedcycle_block_id_planting_date",
				Unique:  false,
				Columns: []*schema.Column{ArchivedCyclesColumns[8], ArchivedCyclesColumns[4]},
			},
		},
	}
	// BlocksColumns holds the columns for the "blocks" table.
	BlocksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "legacy_code", Type: field.TypeString},
		{Name: "sequence_number", Type: field.TypeInt},
		{Name: "block_type", Type: field.TypeString},
		{Name: "max_capacity", Type: field.TypeInt},
		{Name: "state", Type: field.TypeString},
		{Name: "crop_name", Type: field.TypeString, Nullable: true},
		{Name: "planting_date", Type: field.TypeTime, Nullable: true},
		{Name: "watering_frequency_days", Type: field.TypeInt},
		{Name: "expected_status_changes", Type: field.TypeJSON, Nullable: true, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "farm_id", Type: field.TypeUUID},
		{Name: "physical_block_id", Type: field.TypeUUID, Nullable: true},
	}
	// BlocksTable holds the schema information for the "blocks" table.
	BlocksTable = &schema.Table{
		Name:       "blocks",
		Columns:    BlocksColumns,
		PrimaryKey: []*schema.Column{BlocksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "blocks_farms_blocks",
				Columns:    []*schema.Column{BlocksColumns[12]},
				RefColumns: []*schema.Column{FarmsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "blocks_physical_blocks_blocks",
				Columns:    []*schema.Column{BlocksColumns[13]},
				RefColumns: []*schema.Column{PhysicalBlocksColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "block_farm_id_legacy_code",
				Unique:  true,
				Columns: []*schema.Column{BlocksColumns[12], BlocksColumns[1]},
			},
			{
				Name:    "block_state",
				Unique:  false,
				Columns: []*schema.Column{BlocksColumns[5]},
			},
		},
	}
	// CropsColumns holds the columns for the "crops" table.
	CropsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "variety", Type: field.TypeString, Nullable: true},
		{Name: "germination_days", Type: field.TypeInt, Nullable: true},
		{Name: "vegetative_days", Type: field.TypeInt, Nullable: true},
		{Name: "flowering_days", Type: field.TypeInt, Nullable: true},
		{Name: "total_cycle_days", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CropsTable holds the schema information for the "crops" table.
	CropsTable = &schema.Table{
		Name:       "crops",
		Columns:    CropsColumns,
		PrimaryKey: []*schema.Column{CropsColumns[0]},
	}
	// FarmsColumns holds the columns for the "farms" table.
	FarmsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "legacy_code", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FarmsTable holds the schema information for the "farms" table.
	FarmsTable = &schema.Table{
		Name:       "farms",
		Columns:    FarmsColumns,
		PrimaryKey: []*schema.Column{FarmsColumns[0]},
	}
	// HarvestsColumns holds the columns for the "harvests" table.
	HarvestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "legacy_code", Type: field.TypeString, Unique: true},
		{Name: "crop_name", Type: field.TypeString, Nullable: true},
		{Name: "date", Type: field.TypeTime},
		{Name: "quantity_kg", Type: field.TypeFloat64},
		{Name: "grade", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "block_id", Type: field.TypeUUID},
	}
	// HarvestsTable holds the schema information for the "harvests" table.
	HarvestsTable = &schema.Table{
		Name:       "harvests",
		Columns:    HarvestsColumns,
		PrimaryKey: []*schema.Column{HarvestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "harvests_blocks_harvests",
				Columns:    []*schema.Column{HarvestsColumns[7]},
				RefColumns: []*schema.Column{BlocksColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "harvest_block_id_date",
				Unique:  false,
				Columns: []*schema.Column{HarvestsColumns[7], HarvestsColumns[3]},
			},
		},
	}
	// PhysicalBlocksColumns holds the columns for the "physical_blocks" table.
	PhysicalBlocksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "legacy_code", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "area_sq_m", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "farm_id", Type: field.TypeUUID},
	}
	// PhysicalBlocksTable holds the schema information for the "physical_blocks" table.
	PhysicalBlocksTable = &schema.Table{
		Name:       "physical_blocks",
		Columns:    PhysicalBlocksColumns,
		PrimaryKey: []*schema.Column{PhysicalBlocksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "physical_blocks_farms_physical_blocks",
				Columns:    []*schema.Column{PhysicalBlocksColumns[6]},
				RefColumns: []*schema.Column{FarmsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "physicalblock_farm_id_legacy_code",
				Unique:  true,
				Columns: []*schema.Column{PhysicalBlocksColumns[6], PhysicalBlocksColumns[1]},
			},
		},
	}
	// PriceRecordsColumns holds the columns for the "price_records" table.
	PriceRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "legacy_code", Type: field.TypeString, Unique: true},
		{Name: "crop_name", Type: field.TypeString},
		{Name: "date", Type: field.TypeTime},
		{Name: "price_per_kg", Type: field.TypeFloat64},
		{Name: "currency_code", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "crop_id", Type: field.TypeUUID, Nullable: true},
	}
	// PriceRecordsTable holds the schema information for the "price_records" table.
	PriceRecordsTable = &schema.Table{
		Name:       "price_records",
		Columns:    PriceRecordsColumns,
		PrimaryKey: []*schema.Column{PriceRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "price_records_crops_price_records",
				Columns:    []*schema.Column{PriceRecordsColumns[7]},
				RefColumns: []*schema.Column{CropsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pricerecord_crop_name_date",
				Unique:  false,
				Columns: []*schema.Column{PriceRecordsColumns[2], PriceRecordsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArchivedCyclesTable,
		BlocksTable,
		CropsTable,
		FarmsTable,
		HarvestsTable,
		PhysicalBlocksTable,
		PriceRecordsTable,
	}
)

func init() {
	ArchivedCyclesTable.ForeignKeys[0].RefTable = BlocksTable
	ArchivedCyclesTable.Annotation = &entsql.Annotation{
		Table: "archived_cycles",
	}
	BlocksTable.ForeignKeys[0].RefTable = FarmsTable
	BlocksTable.ForeignKeys[1].RefTable = PhysicalBlocksTable
	BlocksTable.Annotation = &entsql.Annotation{
		Table: "blocks",
	}
	CropsTable.Annotation = &entsql.Annotation{
		Table: "crops",
	}
	FarmsTable.Annotation = &entsql.Annotation{
		Table: "farms",
	}
	HarvestsTable.ForeignKeys[0].RefTable = BlocksTable
	HarvestsTable.Annotation = &entsql.Annotation{
		Table: "harvests",
	}
	PhysicalBlocksTable.ForeignKeys[0].RefTable = FarmsTable
	PhysicalBlocksTable.Annotation = &entsql.Annotation{
		Table: "physical_blocks",
	}
	PriceRecordsTable.ForeignKeys[0].RefTable = CropsTable
	PriceRecordsTable.Annotation = &entsql.Annotation{
		Table: "price_records",
	}
}
