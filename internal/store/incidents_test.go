package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakbridge/abc-dashboard/internal/models"
)

func testRecord(id, studentID string) models.IncidentRecord {
	return models.IncidentRecord{
		ID:          id,
		Date:        time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Time:        "10:30",
		StudentID:   studentID,
		Antecedent:  "Transition",
		Behaviours:  []string{"Elopement"},
		Intensity:   3,
		Consequence: "Redirection",
		Location:    "Hallway",
		Description: "left the line",
		RecordedBy:  "stf-py",
	}
}

func TestIncidentLogAppendGrowsByOne(t *testing.T) {
	log := NewIncidentLog()

	require.NoError(t, log.Append(testRecord("a", "stu1")))
	assert.Equal(t, 1, log.Len())
	require.NoError(t, log.Append(testRecord("b", "stu1")))
	assert.Equal(t, 2, log.Len())
	assert.True(t, log.Contains("a"))
	assert.True(t, log.Contains("b"))
}

func TestIncidentLogRejectsDuplicateID(t *testing.T) {
	log := NewIncidentLog()
	require.NoError(t, log.Append(testRecord("a", "stu1")))

	err := log.Append(testRecord("a", "stu2"))
	require.Error(t, err)
	assert.Equal(t, 1, log.Len())
}

func TestIncidentLogAllReturnsCopyInInsertionOrder(t *testing.T) {
	log := NewIncidentLog()
	require.NoError(t, log.Append(testRecord("a", "stu1")))
	require.NoError(t, log.Append(testRecord("b", "stu2")))

	rows := log.All()
	require.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0].ID)
	assert.Equal(t, "b", rows[1].ID)

	rows[0].StudentID = "mutated"
	assert.Equal(t, "stu1", log.All()[0].StudentID)
}

func TestIncidentLogSerialisesConcurrentAppends(t *testing.T) {
	log := NewIncidentLog()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = log.Append(testRecord(string(rune('A'+n%26))+string(rune('a'+n/26)), "stu1"))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, log.Len())
}
