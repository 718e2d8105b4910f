package filter

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/jimezsa/govjobs/internal/models"
)

type favoriteSet map[string]bool

func (f favoriteSet) Has(id string) bool { return f[id] }

var today = time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

func due(days int) models.Text {
	return models.Text(fmt.Sprintf("/Date(%d)/", today.AddDate(0, 0, days).UnixMilli()))
}

func ids(jobs []models.JobRecord) []string {
	out := make([]string, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, job.ID())
	}
	return out
}

func sampleJobs() []models.JobRecord {
	return []models.JobRecord{
		{RequestID: "1", TenderNumber: "2026-101", TenderName: "Data Analyst", OfficeName: "Finance", OfficeUnitName: "Budget", LocationName: "Jerusalem", Area: "Center", PublishType: "public", LastDateRaw: due(10)},
		{RequestID: "2", TenderNumber: "2026-102", TenderName: "Nurse", OfficeName: "Health", OfficeUnitName: "Rambam", LocationName: "Haifa", Area: "North", PublishType: "internal", LastDateRaw: due(3)},
		{RequestID: "3", TenderNumber: "2026-103", TenderName: "Software Engineer", OfficeName: "Finance", OfficeUnitName: "IT", LocationName: "Jerusalem", Area: "Center", PublishType: "public", LastDateRaw: due(30)},
		{RequestID: "4", TenderNumber: "2026-104", TenderName: "Legal Advisor", OfficeName: "Justice", OfficeUnitName: "Legal", LocationName: "Tel Aviv", Area: "Center", PublishType: "public"},
	}
}

func TestComputeViewFilters(t *testing.T) {
	all := sampleJobs()
	favorites := favoriteSet{"2": true, "4": true, "stale": true}

	cases := []struct {
		name string
		spec models.FilterSpec
		want []string
	}{
		{"no filter", models.FilterSpec{}, []string{"2", "1", "3", "4"}},
		{"case-insensitive search", models.FilterSpec{Query: "ANALYST"}, []string{"1"}},
		{"partial substring on unit", models.FilterSpec{Query: "amba"}, []string{"2"}},
		{"tender number", models.FilterSpec{Query: "2026-103"}, []string{"3"}},
		{"location", models.FilterSpec{Location: "Jerusalem"}, []string{"1", "3"}},
		{"office and type", models.FilterSpec{Office: "Finance", PublishType: "public"}, []string{"1", "3"}},
		{"area", models.FilterSpec{Area: "North"}, []string{"2"}},
		{"axes combine with AND", models.FilterSpec{Office: "Finance", Query: "nurse"}, []string{}},
		{"favorites only", models.FilterSpec{FavoritesOnly: true}, []string{"2", "4"}},
		{"no match", models.FilterSpec{Query: "astronaut"}, []string{}},
		{"whitespace term ignored", models.FilterSpec{Query: "   "}, []string{"2", "1", "3", "4"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeView(all, tc.spec, models.DefaultSort(), favorites)
			if !reflect.DeepEqual(ids(got), tc.want) {
				t.Fatalf("ComputeView() = %v, want %v", ids(got), tc.want)
			}
		})
	}
}

func TestComputeViewSearchSpansAdjacentFields(t *testing.T) {
	all := []models.JobRecord{{RequestID: "1", TenderName: "Clerk", OfficeName: "Tax"}}
	got := ComputeView(all, models.FilterSpec{Query: "clerk tax"}, models.DefaultSort(), nil)
	if len(got) != 1 {
		t.Fatalf("expected the joined-field match to be kept, got %v", ids(got))
	}
}

func TestComputeViewIsSubsetAndDoesNotMutate(t *testing.T) {
	all := sampleJobs()
	before := ids(all)
	got := ComputeView(all, models.FilterSpec{Area: "Center"}, models.SortSpec{Key: models.SortName, Order: models.OrderDesc}, nil)

	if !reflect.DeepEqual(ids(all), before) {
		t.Fatalf("input order changed: %v", ids(all))
	}
	seen := map[string]bool{}
	for _, job := range got {
		if seen[job.ID()] {
			t.Fatalf("duplicate %s in view", job.ID())
		}
		seen[job.ID()] = true
		found := false
		for _, source := range all {
			if reflect.DeepEqual(source, job) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("view contains record not in input: %+v", job)
		}
	}
}

func TestComputeViewEmptyDataset(t *testing.T) {
	got := ComputeView(nil, models.FilterSpec{Query: "x"}, models.DefaultSort(), nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("ComputeView(nil) = %#v, want empty slice", got)
	}
}

func TestSortIsStableInBothDirections(t *testing.T) {
	all := []models.JobRecord{
		{RequestID: "a", OfficeName: "Health"},
		{RequestID: "b", OfficeName: "Finance"},
		{RequestID: "c", OfficeName: "Health"},
		{RequestID: "d", OfficeName: "Finance"},
		{RequestID: "e", OfficeName: "Health"},
	}

	asc := ComputeView(all, models.FilterSpec{}, models.SortSpec{Key: models.SortOffice, Order: models.OrderAsc}, nil)
	if want := []string{"b", "d", "a", "c", "e"}; !reflect.DeepEqual(ids(asc), want) {
		t.Fatalf("asc = %v, want %v", ids(asc), want)
	}

	desc := ComputeView(all, models.FilterSpec{}, models.SortSpec{Key: models.SortOffice, Order: models.OrderDesc}, nil)
	if want := []string{"a", "c", "e", "b", "d"}; !reflect.DeepEqual(ids(desc), want) {
		t.Fatalf("desc = %v, want %v", ids(desc), want)
	}
}

func TestSortMissingDatesLast(t *testing.T) {
	all := []models.JobRecord{
		{RequestID: "none-1"},
		{RequestID: "late", LastDateRaw: due(20)},
		{RequestID: "bad", LastDateRaw: "soon"},
		{RequestID: "early", LastDateRaw: due(1)},
	}

	asc := ComputeView(all, models.FilterSpec{}, models.SortSpec{Key: models.SortLastDate, Order: models.OrderAsc}, nil)
	if want := []string{"early", "late", "none-1", "bad"}; !reflect.DeepEqual(ids(asc), want) {
		t.Fatalf("asc = %v, want %v", ids(asc), want)
	}

	desc := ComputeView(all, models.FilterSpec{}, models.SortSpec{Key: models.SortLastDate, Order: models.OrderDesc}, nil)
	if want := []string{"late", "early", "none-1", "bad"}; !reflect.DeepEqual(ids(desc), want) {
		t.Fatalf("desc = %v, want %v", ids(desc), want)
	}
}

func TestSortKeys(t *testing.T) {
	all := []models.JobRecord{
		{RequestID: "1", TenderName: "b", LocationName: "Z", PublishDateRaw: due(-2)},
		{RequestID: "2", TenderName: "a", LocationName: "Y", PublishDateRaw: due(-9)},
		{RequestID: "3", TenderName: "c", LocationName: "X", PublishDateRaw: due(-5)},
	}

	cases := []struct {
		key  models.SortKey
		want []string
	}{
		{models.SortName, []string{"2", "1", "3"}},
		{models.SortLocation, []string{"3", "2", "1"}},
		{models.SortPublishDate, []string{"2", "3", "1"}},
		{models.SortKey("unknown"), []string{"2", "1", "3"}},
	}
	for _, tc := range cases {
		got := ComputeView(all, models.FilterSpec{}, models.SortSpec{Key: tc.key, Order: models.OrderAsc}, nil)
		if !reflect.DeepEqual(ids(got), tc.want) {
			t.Fatalf("sort by %s = %v, want %v", tc.key, ids(got), tc.want)
		}
	}
}

func TestEndToEndOfficeFilterAndDeadlineSort(t *testing.T) {
	all := []models.JobRecord{
		{RequestID: "B", OfficeName: "X", LastDateRaw: due(20)},
		{RequestID: "C", OfficeName: "Y", LastDateRaw: due(-4)},
		{RequestID: "A", OfficeName: "X", LastDateRaw: due(3)},
	}
	got := ComputeView(all, models.FilterSpec{Office: "X"}, models.DefaultSort(), nil)
	if want := []string{"A", "B"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("ComputeView() = %v, want %v", ids(got), want)
	}
}
