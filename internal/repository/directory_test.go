package repository

import (
	"testing"
	"time"

	"github.com/andy/contactbook/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newRecord(t *testing.T, name, birthday string) *domain.Record {
	t.Helper()
	r, err := domain.NewRecord(name)
	require.NoError(t, err)
	if birthday != "" {
		require.NoError(t, r.SetBirthday(birthday))
	}
	return r
}

func names(records []*domain.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name()
	}
	return out
}

func TestDirectory_AddFind(t *testing.T) {
	d := NewDirectory()

	_, ok := d.Find("John")
	assert.False(t, ok)

	john := newRecord(t, "John", "")
	d.Add(john)

	got, ok := d.Find("John")
	require.True(t, ok)
	assert.Same(t, john, got)

	_, ok = d.Find("john")
	assert.False(t, ok, "lookup is exact")
}

func TestDirectory_AddReplaces(t *testing.T) {
	d := NewDirectory()

	first := newRecord(t, "John", "")
	require.NoError(t, first.AddPhone("1111111111"))
	d.Add(first)
	d.Add(newRecord(t, "Jane", ""))

	second := newRecord(t, "John", "")
	d.Add(second)

	assert.Equal(t, 2, d.Len())
	got, _ := d.Find("John")
	assert.Same(t, second, got)
	assert.Empty(t, got.Phones(), "replace, not merge")
	assert.Equal(t, []string{"John", "Jane"}, names(d.All()), "replaced record keeps its position")
}

func TestDirectory_Delete(t *testing.T) {
	d := NewDirectory()
	d.Add(newRecord(t, "A", ""))
	d.Add(newRecord(t, "B", ""))
	d.Add(newRecord(t, "C", ""))

	assert.True(t, d.Delete("A"))
	assert.False(t, d.Delete("A"))
	assert.Equal(t, []string{"B", "C"}, names(d.All()))

	c, ok := d.Find("C")
	require.True(t, ok)
	assert.Equal(t, "C", c.Name())

	d.Add(newRecord(t, "A", ""))
	assert.Equal(t, []string{"B", "C", "A"}, names(d.All()))
}

func TestDirectory_UpcomingBirthdays(t *testing.T) {
	ref := date(2024, time.March, 20) // Wednesday

	d := NewDirectory()
	d.Add(newRecord(t, "Maya Jonshon", "24.03.1990"))  // Sunday
	d.Add(newRecord(t, "Laura McKlean", "18.03.1995")) // already passed
	d.Add(newRecord(t, "Alivia Smith", "23.03.1998"))  // Saturday
	d.Add(newRecord(t, "No Birthday", ""))
	d.Add(newRecord(t, "Today", "20.03.2000"))
	d.Add(newRecord(t, "Edge", "27.03.2001"))     // 7 days out
	d.Add(newRecord(t, "Too Far", "28.03.2001"))  // 8 days out
	d.Add(newRecord(t, "Thursday", "21.03.1985")) // weekday

	want := []UpcomingBirthday{
		{Name: "Maya Jonshon", CongratulationDate: date(2024, time.March, 25)},
		{Name: "Alivia Smith", CongratulationDate: date(2024, time.March, 25)},
		{Name: "Today", CongratulationDate: date(2024, time.March, 20)},
		{Name: "Edge", CongratulationDate: date(2024, time.March, 27)},
		{Name: "Thursday", CongratulationDate: date(2024, time.March, 21)},
	}

	got := d.UpcomingBirthdays(ref)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("UpcomingBirthdays mismatch (-want +got):\n%s", diff)
	}
}

func TestDirectory_UpcomingBirthdays_YearRollover(t *testing.T) {
	d := NewDirectory()
	d.Add(newRecord(t, "New Year", "02.01.1990"))

	got := d.UpcomingBirthdays(date(2024, time.December, 28))
	want := []UpcomingBirthday{
		{Name: "New Year", CongratulationDate: date(2025, time.January, 2)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("UpcomingBirthdays mismatch (-want +got):\n%s", diff)
	}
}

func TestDirectory_UpcomingBirthdays_LeapDay(t *testing.T) {
	d := NewDirectory()
	d.Add(newRecord(t, "Leapling", "29.02.2000"))

	// 28.02.2023 is a Tuesday
	got := d.UpcomingBirthdays(date(2023, time.February, 25))
	want := []UpcomingBirthday{
		{Name: "Leapling", CongratulationDate: date(2023, time.February, 28)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("UpcomingBirthdays mismatch (-want +got):\n%s", diff)
	}
}

func TestDirectory_UpcomingBirthdays_Window(t *testing.T) {
	d := NewDirectory(WithWindow(2))
	d.Add(newRecord(t, "In", "22.03.1990"))
	d.Add(newRecord(t, "Out", "23.03.1990"))

	got := d.UpcomingBirthdays(date(2024, time.March, 20))
	require.Len(t, got, 1)
	assert.Equal(t, "In", got[0].Name)
}

func TestDirectory_UpcomingBirthdays_Empty(t *testing.T) {
	d := NewDirectory()
	assert.Empty(t, d.UpcomingBirthdays(date(2024, time.March, 20)))
}
