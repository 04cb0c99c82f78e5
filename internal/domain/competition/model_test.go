package competition

import "testing"

func int64Ptr(v int64) *int64 { return &v }

func TestInCategory(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		comp  Competition
		genre int64
		age   *int64
		want  bool
	}{
		{name: "exact", comp: Competition{GenreID: int64Ptr(1), AgeCategoryID: int64Ptr(3)}, genre: 1, age: int64Ptr(3), want: true},
		{name: "other age", comp: Competition{GenreID: int64Ptr(1), AgeCategoryID: int64Ptr(2)}, genre: 1, age: int64Ptr(3)},
		{name: "other genre", comp: Competition{GenreID: int64Ptr(2), AgeCategoryID: int64Ptr(3)}, genre: 1, age: int64Ptr(3)},
		{name: "no genre", comp: Competition{AgeCategoryID: int64Ptr(3)}, genre: 1, age: int64Ptr(3)},
		{name: "unset age matches unset", comp: Competition{GenreID: int64Ptr(1)}, genre: 1, want: true},
		{name: "unset age rejects set", comp: Competition{GenreID: int64Ptr(1), AgeCategoryID: int64Ptr(3)}, genre: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.comp.InCategory(tc.genre, tc.age); got != tc.want {
				t.Fatalf("InCategory() = %v, want %v", got, tc.want)
			}
		})
	}
}
