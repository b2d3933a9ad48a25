//go:build unit

package candidate

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/tripsmith/trip-planner-service/internal/app/dto"
)

func TestMapInterests_Closure(t *testing.T) {
	mapRequest := func(interests []string, want []dto.ActivityCategory) func(t *testing.T) {
		return func(t *testing.T) {
			got := MapInterests(interests)

			diff := cmp.Diff(want, got)
			if diff != "" {
				t.Fatalf("MapInterests mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("empty_gets_defaults", mapRequest(nil, []dto.ActivityCategory{
		dto.ActivityCultural, dto.ActivityOutdoor, dto.ActivityFood, dto.ActivityEntertainment,
	}))

	t.Run("aliases_resolve", mapRequest([]string{"hiking", "nightlife"}, []dto.ActivityCategory{
		dto.ActivityOutdoor, dto.ActivityEntertainment,
	}))

	t.Run("direct_categories_pass_through", mapRequest([]string{"historical", "nature"}, []dto.ActivityCategory{
		dto.ActivityHistorical, dto.ActivityNature,
	}))

	t.Run("duplicates_collapse", mapRequest([]string{"museum", "art", "culture"}, []dto.ActivityCategory{
		dto.ActivityCultural,
	}))

	t.Run("case_and_whitespace_tolerant", mapRequest([]string{" Food ", "BEACH"}, []dto.ActivityCategory{
		dto.ActivityFood, dto.ActivityOutdoor,
	}))

	t.Run("unrecognized_only_gets_fallback", mapRequest([]string{"spelunking"}, []dto.ActivityCategory{
		dto.ActivityCultural, dto.ActivityOutdoor,
	}))
}

func TestPOIProvider_Search(t *testing.T) {
	t.Run("hardcoded_fallback_for_single_interest", func(t *testing.T) {
		p := NewPOIProvider(testConfig(), nil, failingLLM(assert.AnError), 5)

		req := candidateRequest()
		req.Preferences.Interests = []string{"food"}

		pois, err := p.Search(context.Background(), req)

		assert.NoError(t, err)

		want := []string{"Local Food Market", "Famous Restaurant Row"}
		got := make([]string, len(pois))
		for i, poi := range pois {
			got[i] = poi.Name
		}

		diff := cmp.Diff(want, got)
		if diff != "" {
			t.Fatalf("poi order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("default_interests_cover_four_categories", func(t *testing.T) {
		p := NewPOIProvider(testConfig(), nil, failingLLM(assert.AnError), 5)

		pois, err := p.Search(context.Background(), candidateRequest())

		assert.NoError(t, err)
		assert.Len(t, pois, 7)

		// best rated first
		assert.Equal(t, "Riverside Hiking Trail", pois[0].Name)
	})
}

func TestPOIProvider_Normalize_Closure(t *testing.T) {
	toDTORequest := func(raw rawPOI, interests []dto.ActivityCategory, wantErr bool, check func(t *testing.T, poi dto.PointOfInterest)) func(t *testing.T) {
		return func(t *testing.T) {
			p := NewPOIProvider(testConfig(), nil, failingLLM(assert.AnError), 5)

			got, err := p.toDTO(raw, interests)
			if (err != nil) != wantErr {
				t.Fatalf("toDTO error = %v, wantErr %v", err, wantErr)
			}
			if !wantErr && check != nil {
				check(t, got)
			}
		}
	}

	rating := 4.0
	badRating := 7.0
	zeroHours := 0.0

	t.Run("valid", toDTORequest(rawPOI{
		Name: "City Museum of Art", Description: "art museum", Category: "cultural", Rating: &rating,
	}, nil, false, func(t *testing.T, poi dto.PointOfInterest) {
		assert.Equal(t, dto.ActivityCultural, poi.Category)
	}))

	t.Run("rating_out_of_range", toDTORequest(rawPOI{
		Name: "x", Category: "cultural", Rating: &badRating,
	}, nil, true, nil))

	t.Run("zero_duration", toDTORequest(rawPOI{
		Name: "x", Category: "cultural", DurationHours: &zeroHours,
	}, nil, true, nil))

	t.Run("keyword_fallback_categorizes", toDTORequest(rawPOI{
		Name: "Sunset Beach Park", Description: "long walks on the trail", Category: "unknown-tag",
	}, nil, false, func(t *testing.T, poi dto.PointOfInterest) {
		assert.Equal(t, dto.ActivityOutdoor, poi.Category)
	}))

	t.Run("interest_fallback_when_no_keywords", toDTORequest(rawPOI{
		Name: "Mystery Venue", Description: "somewhere in town", Category: "",
	}, []dto.ActivityCategory{dto.ActivityFood}, false, func(t *testing.T, poi dto.PointOfInterest) {
		assert.Equal(t, dto.ActivityFood, poi.Category)
	}))

	t.Run("defaults_for_missing_fields", toDTORequest(rawPOI{Category: "food"},
		nil, false, func(t *testing.T, poi dto.PointOfInterest) {
			assert.Equal(t, "Unknown", poi.Name)
			assert.Equal(t, "No description available", poi.Description)
		}))
}

func TestSortPOIs_Closure(t *testing.T) {
	high, mid := 4.8, 4.0
	long, short := 4.0, 1.0

	pois := []dto.PointOfInterest{
		{Name: "NoRating", DurationHours: &long},
		{Name: "Best", Rating: &high, DurationHours: &short},
		{Name: "MidLong", Rating: &mid, DurationHours: &long},
		{Name: "MidShort", Rating: &mid, DurationHours: &short},
	}

	sortPOIs(pois)

	want := []string{"Best", "MidLong", "MidShort", "NoRating"}
	got := make([]string, len(pois))
	for i, poi := range pois {
		got[i] = poi.Name
	}

	diff := cmp.Diff(want, got)
	if diff != "" {
		t.Fatalf("sortPOIs mismatch (-want +got):\n%s", diff)
	}
}
