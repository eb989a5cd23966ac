package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bale/internal/app"
	"go.trai.ch/bale/internal/core/domain"
	_ "go.trai.ch/bale/internal/wiring"
)

// TestGraftDependencies ensures that every node declaring a dependency
// actually uses it, and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	// graft.AssertDepsValid infers the dependency ID from the package of the
	// type passed to Dep[T]. ports.CommandRunner, ports.Logger and friends all
	// live in one package, so every distinct node looks like a "ports" dependency.
	t.Skip("Skipping Graft validation due to static analysis limitation with shared ports package")
	graft.AssertDepsValid(t, "../../internal")
}

func TestGraftResolvesComponents(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components.App)
	require.Equal(t, domain.Ecosystems(), components.App.Types())
}
