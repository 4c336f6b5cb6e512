package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatepassku_backend/internals/features/visitors/gatepass/model"
)

func TestCheckInThenCheckOutHappyPath(t *testing.T) {
	r := newTestRegistry(t)
	v := register(t, r, "Ravi")

	in, err := r.CheckIn(v.VisitorPassID)
	require.NoError(t, err)
	assert.Equal(t, "Check-in marked.", in.Message)
	assert.Equal(t, model.StatusIn, in.Visitor.VisitorStatus)
	assert.NotEmpty(t, in.Visitor.VisitorCheckIn)
	assert.Empty(t, in.Visitor.VisitorCheckOut)
	assert.False(t, in.Visitor.VisitorExpired)

	out, err := r.CheckOut(v.VisitorPassID)
	require.NoError(t, err)
	assert.Equal(t, "Check-out marked. Gate pass expired.", out.Message)
	assert.Equal(t, model.StatusOut, out.Visitor.VisitorStatus)
	assert.NotEmpty(t, out.Visitor.VisitorCheckOut)
	assert.True(t, out.Visitor.VisitorExpired)
}

func TestCheckOutWhileExpectedFails(t *testing.T) {
	r := newTestRegistry(t)
	v := register(t, r, "Ravi")

	_, err := r.CheckOut(v.VisitorPassID)
	var ite *InvalidTransitionError
	require.ErrorAs(t, err, &ite)
	assert.Equal(t, "Visitor is not inside.", ite.Msg)

	// record tidak berubah
	cur, err := r.FindByPassID(v.VisitorPassID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusExpected, cur.VisitorStatus)
	assert.False(t, cur.VisitorExpired)
}

func TestCheckInWhileAlreadyInsideFails(t *testing.T) {
	r := newTestRegistry(t)
	v := register(t, r, "Ravi")

	_, err := r.CheckIn(v.VisitorPassID)
	require.NoError(t, err)

	_, err = r.CheckIn(v.VisitorPassID)
	var ite *InvalidTransitionError
	require.ErrorAs(t, err, &ite)
	assert.Equal(t, "Visitor is already inside.", ite.Msg)
}

func TestExpiredPassRejectedEverywhere(t *testing.T) {
	r := newTestRegistry(t)
	v := register(t, r, "Ravi")

	_, err := r.CheckIn(v.VisitorPassID)
	require.NoError(t, err)
	_, err = r.CheckOut(v.VisitorPassID)
	require.NoError(t, err)

	// pass sudah expired: ketiga entry point menolak dengan error yang sama
	_, err = r.CheckIn(v.VisitorPassID)
	assert.ErrorIs(t, err, ErrPassExpired)
	_, err = r.CheckOut(v.VisitorPassID)
	assert.ErrorIs(t, err, ErrPassExpired)
	_, err = r.Scan(v.VisitorPassID)
	assert.ErrorIs(t, err, ErrPassExpired)
}

func TestGateGuardOrder(t *testing.T) {
	r := newTestRegistry(t)

	// pass id kosong (whitespace pun dianggap kosong)
	for _, pass := range []string{"", "   "} {
		_, err := r.CheckIn(pass)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "Pass ID required.", ve.Msg)
	}

	// pass id tidak dikenal
	_, err := r.CheckIn("GATE-1999-0042")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = r.CheckOut("GATE-1999-0042")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = r.Scan("GATE-1999-0042")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScanTogglesThenExpires(t *testing.T) {
	r := newTestRegistry(t)
	v := register(t, r, "Ravi")

	first, err := r.Scan(v.VisitorPassID)
	require.NoError(t, err)
	assert.Equal(t, "Visitor checked-in via QR.", first.Message)
	assert.Equal(t, model.StatusIn, first.Visitor.VisitorStatus)
	assert.NotEmpty(t, first.Visitor.VisitorCheckIn)

	second, err := r.Scan(v.VisitorPassID)
	require.NoError(t, err)
	assert.Equal(t, "Visitor checked-out via QR. Gate pass expired.", second.Message)
	assert.Equal(t, model.StatusOut, second.Visitor.VisitorStatus)
	assert.NotEmpty(t, second.Visitor.VisitorCheckOut)
	assert.True(t, second.Visitor.VisitorExpired)

	_, err = r.Scan(v.VisitorPassID)
	assert.ErrorIs(t, err, ErrPassExpired)
}

// Scan dan tombol manual harus menghasilkan state akhir yang sama.
func TestScanMatchesManualTransitions(t *testing.T) {
	r := newTestRegistry(t)
	manual := register(t, r, "Manual")
	scanned := register(t, r, "Scanned")

	_, err := r.CheckIn(manual.VisitorPassID)
	require.NoError(t, err)
	_, err = r.Scan(scanned.VisitorPassID)
	require.NoError(t, err)

	m, _ := r.FindByPassID(manual.VisitorPassID)
	s, _ := r.FindByPassID(scanned.VisitorPassID)
	assert.Equal(t, m.VisitorStatus, s.VisitorStatus)
	assert.Equal(t, m.VisitorExpired, s.VisitorExpired)

	_, err = r.CheckOut(manual.VisitorPassID)
	require.NoError(t, err)
	_, err = r.Scan(scanned.VisitorPassID)
	require.NoError(t, err)

	m, _ = r.FindByPassID(manual.VisitorPassID)
	s, _ = r.FindByPassID(scanned.VisitorPassID)
	assert.Equal(t, m.VisitorStatus, s.VisitorStatus)
	assert.Equal(t, m.VisitorExpired, s.VisitorExpired)
	assert.True(t, s.VisitorExpired)
}

func TestCheckInClearsStaleCheckOut(t *testing.T) {
	r := newTestRegistry(t)
	v := register(t, r, "Ravi")

	res, err := r.CheckIn(v.VisitorPassID)
	require.NoError(t, err)
	assert.Empty(t, res.Visitor.VisitorCheckOut)
}
