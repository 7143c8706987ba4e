package campusgrid

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusgrid/campusgrid/core"
	"github.com/campusgrid/campusgrid/search"
)

func TestDatabase_EndToEnd(t *testing.T) {
	db, err := NewMemoryDatabase()
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	_, err = db.CatalogRepository().AddInstitutes(ctx, &core.RawInstitute{
		Name:     "Gamma University",
		Type:     "Private",
		Location: core.Location{City: "Bengaluru", State: "Karnataka"},
		Programmes: []core.RawProgramme{
			{
				Name: "Management",
				Courses: []core.RawCourse{
					{Degree: "MBA", Level: "pg", Fees: core.FeeStructure{Total: 250000}},
				},
			},
		},
	})
	require.NoError(t, err)

	engine, err := db.NewEngine(search.WithPoolSize(1))
	require.NoError(t, err)
	require.NoError(t, engine.Initialize(ctx))

	suggest, err := engine.Suggest("gam", 5)
	require.NoError(t, err)
	require.Len(t, suggest.Institutes, 1)
	assert.Equal(t, "Gamma University", suggest.Institutes[0].Name)

	found, err := engine.Search(search.SearchParams{City: "Bengaluru"})
	require.NoError(t, err)
	require.Len(t, found.Institutes, 1)
	assert.Equal(t, "gamma-university", found.Institutes[0].Slug)
	assert.Equal(t, 1, found.Totals.Courses)

	detail, err := engine.Institute("gamma-university")
	require.NoError(t, err)
	require.NotNil(t, detail.Institute)
	assert.Equal(t, "Gamma University", detail.Institute.Name)
}

func TestDatabase_Close(t *testing.T) {
	db, err := NewMemoryDatabase()
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
