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
)

// Crop is the plant catalog: the growth-cycle stage durations the projector
// reads. A null stage duration means the catalog carries no value; for
// flowering that means the crop skips the stage.
type Crop struct{ ent.Schema }

func (Crop) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "crops"},
	}
}

func (Crop) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty().Unique(),
		field.String("variety").Optional(),
		field.Int("germination_days").NonNegative().Optional().Nillable(),
		field.Int("vegetative_days").NonNegative().Optional().Nillable(),
		field.Int("flowering_days").NonNegative().Optional().Nillable(),
		field.Int("total_cycle_days").NonNegative().Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Crop) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("price_records", PriceRecord.Type),
	}
}

type PriceRecord struct{ ent.Schema }

func (PriceRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "price_records"},
	}
}

func (PriceRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("crop_id", uuid.UUID{}).Optional().Nillable(),
		field.String("legacy_code").NotEmpty().Unique(),
		field.String("crop_name").NotEmpty(),
		field.Time("date"),
		field.Float("price_per_kg").Min(0),
		field.String("currency_code").NotEmpty().MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.Time("created_at").Default(time.Now),
	}
}

func (PriceRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("crop", Crop.Type).
			Ref("price_records").
			Field("crop_id").
			Unique(),
	}
}

func (PriceRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("crop_name", "date"),
	}
}
