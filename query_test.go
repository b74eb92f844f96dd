package depot

import (
	"testing"
)

// TestQueryFiltering tests the composite filter capabilities
func TestQueryFiltering(t *testing.T) {
	type entitySetup struct {
		components []string
		count      int
	}

	tests := []struct {
		name            string
		entitySetups    []entitySetup
		queryType       string // "and", "or", "not", "complex", "empty"
		queryComponents []string
		expectedMatches int
	}{
		{
			name: "And query matches exact",
			entitySetups: []entitySetup{
				{[]string{"Position", "Velocity"}, 5},
				{[]string{"Position"}, 10},
				{[]string{"Velocity"}, 15},
			},
			queryType:       "and",
			queryComponents: []string{"Position", "Velocity"},
			expectedMatches: 5,
		},
		{
			name: "Or query matches either",
			entitySetups: []entitySetup{
				{[]string{"Position", "Velocity"}, 5},
				{[]string{"Position"}, 10},
				{[]string{"Velocity"}, 15},
			},
			queryType:       "or",
			queryComponents: []string{"Position", "Velocity"},
			expectedMatches: 30, // 5 + 10 + 15
		},
		{
			name: "Not query excludes",
			entitySetups: []entitySetup{
				{[]string{"Position", "Velocity"}, 5},
				{[]string{"Position"}, 10},
				{[]string{"Velocity"}, 15},
				{[]string{"Health"}, 20},
			},
			queryType:       "not",
			queryComponents: []string{"Velocity"},
			expectedMatches: 30, // 10 + 20
		},
		{
			name: "Complex query",
			entitySetups: []entitySetup{
				{[]string{"Position", "Velocity", "Health"}, 5},
				{[]string{"Position", "Velocity"}, 10},
				{[]string{"Position", "Health"}, 15},
				{[]string{"Velocity", "Health"}, 20},
				{[]string{"Position"}, 25},
				{[]string{"Velocity"}, 30},
				{[]string{"Health"}, 35},
			},
			queryType:       "complex",
			expectedMatches: 30, // (P AND V) OR (P AND H) = 10 + 15 + 5 (counted once)
		},
		{
			name: "And with nested Not",
			entitySetups: []entitySetup{
				{[]string{"Position", "Enemy"}, 4},
				{[]string{"Position"}, 6},
				{[]string{"Enemy"}, 8},
			},
			queryType:       "and-not",
			expectedMatches: 6,
		},
		{
			name: "Empty query matches nothing",
			entitySetups: []entitySetup{
				{[]string{"Position"}, 3},
			},
			queryType:       "empty",
			expectedMatches: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			for _, setup := range tt.entitySetups {
				for range setup.count {
					e := w.CreateEntity()
					for _, c := range setup.components {
						if err := w.AddComponent(e, c, sampleData(c)); err != nil {
							t.Fatalf("Failed to add %s: %v", c, err)
						}
					}
				}
			}

			query := Factory.NewQuery()
			var queryNode QueryNode

			switch tt.queryType {
			case "and":
				queryNode = query.And(tt.queryComponents)
			case "or":
				queryNode = query.Or(tt.queryComponents)
			case "not":
				queryNode = query.Not(tt.queryComponents)
			case "complex":
				andQuery1 := query.And("Position", "Velocity")
				andQuery2 := query.And("Position", "Health")
				queryNode = query.Or(andQuery1, andQuery2)
			case "and-not":
				queryNode = query.And("Position", query.Not("Enemy"))
			case "empty":
				queryNode = query
			}

			cursor, err := w.Filter(queryNode)
			if err != nil {
				t.Fatalf("Filter failed: %v", err)
			}
			count := 0
			for cursor.Next() {
				count++
			}
			if count != tt.expectedMatches {
				t.Errorf("Got %d matches, expected %d", count, tt.expectedMatches)
			}
		})
	}
}

func TestFilterReportsAndRows(t *testing.T) {
	w := newTestWorld(t)
	e := w.CreateEntity()
	if err := w.AddComponent(e, "Position", pos(7, 8)); err != nil {
		t.Fatalf("Failed to add: %v", err)
	}

	query := Factory.NewQuery()
	query.And("Position", query.Not("Enemy"))

	// The query evaluates its outermost node
	cursor, err := w.Filter(query)
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if !cursor.Next() {
		t.Fatalf("expected a match")
	}
	y := FactoryNewAccessor[float64]("Position", "y")
	if got := *y.GetFromCursor(cursor); got != 8 {
		t.Errorf("y = %v, want 8", got)
	}
	if cursor.Next() {
		t.Errorf("expected a single match")
	}
}

func TestFilterUnknownComponent(t *testing.T) {
	w := newTestWorld(t)
	query := Factory.NewQuery()
	if _, err := w.Filter(query.Or("Position", "Gravity")); err == nil {
		t.Errorf("Filter with unknown component succeeded")
	}
}

func sampleData(component string) Data {
	switch component {
	case "Position", "Velocity":
		return pos(0, 0)
	case "Health":
		return Data{"hp": 1}
	}
	return nil
}
