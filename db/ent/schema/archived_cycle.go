package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type ArchivedCycle struct{ ent.Schema }

func (ArchivedCycle) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "archived_cycles"},
	}
}

func (ArchivedCycle) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("block_id", uuid.UUID{}),
		field.UUID("farm_id", uuid.UUID{}),
		field.String("legacy_code").NotEmpty().Unique(),
		field.String("crop_name").Optional(),
		field.Time("planting_date"),
		field.Time("cleared_date").Optional().Nillable(),
		field.Float("yield_kg").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (ArchivedCycle) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("block", Block.Type).
			Ref("archived_cycles").
			Field("block_id").
			Required().
			Unique(),
	}
}

func (ArchivedCycle) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("block_id", "planting_date"),
	}
}
