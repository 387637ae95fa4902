package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Farm struct{ ent.Schema }

func (Farm) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "farms"},
	}
}

func (Farm) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// legacy_code is the human-readable source code ("TV", "TVGH"),
		// kept for traceability; id is the natural key.
		field.String("legacy_code").NotEmpty().Unique(),
		field.String("name").NotEmpty(),
		field.String("location").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Farm) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("physical_blocks", PhysicalBlock.Type),
		edge.To("blocks", Block.Type),
	}
}
