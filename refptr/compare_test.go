package refptr

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompareByIdentity(t *testing.T) {
	a := NewPtr(newTestSquare(1), Transfer)
	b := NewPtr(newTestSquare(1), Transfer)
	aa := a.Clone()
	var empty Ptr[*testSquare]

	require.True(t, Equal(a, aa))
	require.False(t, NotEqual(a, aa))
	require.Equal(t, 0, Compare(a, aa))
	require.True(t, LessOrEqual(a, aa))
	require.True(t, GreaterOrEqual(a, aa))

	require.False(t, Equal(a, b))
	require.True(t, NotEqual(a, b))
	require.NotEqual(t, 0, Compare(a, b))
	require.Equal(t, Less(a, b), Greater(b, a))
	require.Equal(t, Less(a, b), !GreaterOrEqual(a, b))
	require.Equal(t, Compare(a, b), -Compare(b, a))

	require.True(t, Equal(&empty, (*Ptr[*testSquare])(nil)))
	require.True(t, Less(&empty, a))
	require.True(t, Greater(a, &empty))
	require.True(t, LessOrEqual(&empty, &empty))
}

func TestCompareAcrossTypes(t *testing.T) {
	sq := NewPtr(newTestSquare(1), Transfer)
	shape := Convert[testShape](sq)
	other := NewPtr[testShape](&testCircle{}, Transfer)

	require.True(t, Equal(sq, shape))
	require.True(t, NotEqual(sq, other))
	require.Equal(t, Less(sq, other), Less(shape, other))
}

func TestCompareOrdersHandles(t *testing.T) {
	handles := make([]*Ptr[*testSquare], 0, 10)
	for i := 0; i < 10; i++ {
		handles = append(handles, NewPtr(newTestSquare(float64(i)), Transfer))
	}
	handles = append(handles, &Ptr[*testSquare]{})
	sort.Slice(handles, func(i, j int) bool { return Less(handles[i], handles[j]) })

	require.False(t, handles[0].Valid())
	for i := 1; i < len(handles); i++ {
		require.True(t, Less(handles[i-1], handles[i]))
	}
}
