package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/agrobase-io/agrobase/db/ent/schema/utils"
)

type PhysicalBlock struct{ ent.Schema }

func (PhysicalBlock) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "physical_blocks"},
	}
}

func (PhysicalBlock) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so we can define a composite unique index
		field.UUID("farm_id", uuid.UUID{}),
		field.String("legacy_code").NotEmpty(),
		field.String("name").Optional(),
		field.Float("area_sq_m").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (PhysicalBlock) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("farm", Farm.Type).
			Ref("physical_blocks").
			Field("farm_id").
			Required().
			Unique(),
		edge.To("blocks", Block.Type),
	}
}

func (PhysicalBlock) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("farm_id", "legacy_code").Unique(),
	}
}

type Block struct{ ent.Schema }

func (Block) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "blocks"},
	}
}

func (Block) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("farm_id", uuid.UUID{}),
		field.UUID("physical_block_id", uuid.UUID{}).Optional().Nillable(),
		field.String("legacy_code").NotEmpty(),
		field.Int("sequence_number").NonNegative(),
		field.String("block_type").NotEmpty(),
		field.Int("max_capacity").NonNegative(),
		// authoritative lifecycle state; projections never write it
		field.String("state").NotEmpty().
			Validate(utils.EnumValidator("PLANNED", "GROWING", "FRUITING", "HARVESTING", "CLEANING", "EMPTY")),
		field.String("crop_name").Optional(),
		field.Time("planting_date").Optional().Nillable(),
		field.Int("watering_frequency_days").Positive(),
		// advisory projected dates, replaced wholesale on recomputation
		field.JSON("expected_status_changes", map[string]time.Time{}).Optional().
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Block) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("farm", Farm.Type).
			Ref("blocks").
			Field("farm_id").
			Required().
			Unique(),
		edge.From("physical_block", PhysicalBlock.Type).
			Ref("blocks").
			Field("physical_block_id").
			Unique(),
		edge.To("archived_cycles", ArchivedCycle.Type),
		edge.To("harvests", Harvest.Type),
	}
}

func (Block) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("farm_id", "legacy_code").Unique(),
		index.Fields("state"),
	}
}
