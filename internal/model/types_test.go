package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDListUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  IDList
	}{
		{"single number", `5`, IDList{5}},
		{"one-element array", `[5]`, IDList{5}},
		{"multi-element array", `[5, 7]`, IDList{5, 7}},
		{"empty array", `[]`, IDList{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got IDList
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIDListUnmarshalRejectsNonNumeric(t *testing.T) {
	var got IDList
	assert.Error(t, json.Unmarshal([]byte(`"five"`), &got))
	assert.Error(t, json.Unmarshal([]byte(`{"id":5}`), &got))
}

func TestIDListInsidePayload(t *testing.T) {
	var req CreateRequestRequest
	payload := `{"clientPetId": 3, "serviceId": 5}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	assert.Equal(t, IDList{5}, req.ServiceID)

	payload = `{"clientPetId": 3, "serviceId": [5, 7]}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	assert.Equal(t, IDList{5, 7}, req.ServiceID)
}

func TestDateRoundtrip(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", d.String())

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15"`, string(raw))

	var back Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, d, back)
}

func TestDateUnmarshalRejectsBadInput(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"15.03.2024"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20240315`), &d))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan([]byte("2024-03-15")))
	assert.Equal(t, "2024-03-15", d.String())

	require.NoError(t, d.Scan("2024-04-01"))
	assert.Equal(t, "2024-04-01", d.String())

	assert.Error(t, d.Scan(42))
}

func TestRoleCapabilities(t *testing.T) {
	assert.True(t, RoleAdmin.Can(OpManageCatalog))
	assert.False(t, RoleAdmin.Can(OpManagePets))

	assert.True(t, RoleUser.Can(OpManagePets))
	assert.True(t, RoleUser.Can(OpSubmitRequests))
	assert.True(t, RoleUser.Can(OpViewAppointments))
	assert.False(t, RoleUser.Can(OpTriageRequests))

	assert.True(t, RoleManager.Can(OpTriageRequests))
	assert.False(t, RoleManager.Can(OpManageCatalog))

	assert.True(t, RoleDoctor.Can(OpManageMedicalCards))
	assert.True(t, RoleDoctor.Can(OpViewOwnSchedule))
	assert.False(t, RoleDoctor.Can(OpSubmitRequests))
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleUser, RoleDoctor, RoleManager, RoleAdmin} {
		assert.True(t, r.Valid())
	}
	assert.False(t, Role("SUPERUSER").Valid())
	assert.False(t, Role("").Valid())
}
