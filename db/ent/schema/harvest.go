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

type Harvest struct{ ent.Schema }

func (Harvest) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "harvests"},
	}
}

func (Harvest) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("block_id", uuid.UUID{}),
		field.String("legacy_code").NotEmpty().Unique(),
		field.String("crop_name").Optional(),
		field.Time("date"),
		field.Float("quantity_kg").Min(0),
		field.String("grade").Optional(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Harvest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("block", Block.Type).
			Ref("harvests").
			Field("block_id").
			Required().
			Unique(),
	}
}

func (Harvest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("block_id", "date"),
	}
}
