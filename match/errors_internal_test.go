// SPDX-License-Identifier: MIT

package match

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pairmatch/flow"
)

func TestSolverError(t *testing.T) {
	err := solverError(fmt.Errorf("%w: short by 1", flow.ErrInfeasible))
	require.ErrorIs(t, err, ErrInfeasibleFlow)
	require.ErrorIs(t, err, flow.ErrInfeasible)

	require.ErrorIs(t, solverError(flow.ErrUnbalanced), ErrInternalInconsistency)
	require.ErrorIs(t, solverError(flow.ErrNegativeCycle), ErrInternalInconsistency)

	err = solverError(context.DeadlineExceeded)
	require.Equal(t, context.DeadlineExceeded, err)
}
