package platform

import (
	"fmt"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardAddressIsStableAndInRange(t *testing.T) {
	for _, name := range []string{"WorkScheduler", "a", "another-app"} {
		address := GuardAddress(name)
		assert.Equal(t, address, GuardAddress(name))

		_, portText, err := net.SplitHostPort(address)
		require.NoError(t, err)
		port, err := strconv.Atoi(portText)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, port, minGuardPort)
		assert.LessOrEqual(t, port, maxGuardPort)
	}
}

func TestSecondInstanceIsRejected(t *testing.T) {
	name := fmt.Sprintf("workscheduler-test-%d", time.Now().UnixNano())
	first, err := AcquireSingleInstance(name)
	if err != nil {
		t.Skipf("loopback port unavailable: %v", err)
	}

	second, err := AcquireSingleInstance(name)
	require.ErrorIs(t, err, ErrAlreadyRunning)
	assert.Nil(t, second)

	require.NoError(t, first.Release())
	require.NoError(t, first.Release())

	third, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	require.NoError(t, third.Release())
}

func TestReleaseNilGuard(t *testing.T) {
	var guard *InstanceGuard
	assert.NoError(t, guard.Release())
}
