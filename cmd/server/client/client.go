// Package client provides CLI commands that drive a running fight tracker
// over gRPC
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	combatv1alpha1 "github.com/KirkDiggler/fight-tracker/internal/api/combat/v1alpha1"
	"github.com/KirkDiggler/fight-tracker/internal/pkg/authctx"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	accountID  string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the fight tracker",
	Long: `Client commands call a running fight tracker. Pass --as to act as an
account; commands that change state require it.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&accountID, "as", "", "Account id to act as")

	// Fight lifecycle
	ClientCmd.AddCommand(activeFightCmd)
	ClientCmd.AddCommand(startFightCmd)
	ClientCmd.AddCommand(finishFightCmd)

	// Participants
	ClientCmd.AddCommand(listCmd)
	ClientCmd.AddCommand(watchCmd)
	ClientCmd.AddCommand(joinCmd)
	ClientCmd.AddCommand(setHPCmd)
	ClientCmd.AddCommand(resyncCmd)

	// DM tools
	ClientCmd.AddCommand(setParticipantHPCmd)
	ClientCmd.AddCommand(addEnemyCmd)
	ClientCmd.AddCommand(addMonsterCmd)
	ClientCmd.AddCommand(editEnemyCmd)
	ClientCmd.AddCommand(deleteEnemyCmd)
	ClientCmd.AddCommand(monstersCmd)
}

// createCombatClient dials the server with the caller identity attached to
// every call
func createCombatClient() (combatv1alpha1.CombatServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithChainUnaryInterceptor(authctx.UnaryClientInterceptor(accountID)),
		grpc.WithChainStreamInterceptor(authctx.StreamClientInterceptor(accountID)),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return combatv1alpha1.NewCombatServiceClient(conn), cleanup, nil
}

// withClient runs fn with a connected client and a request timeout
func withClient(fn func(ctx context.Context, client combatv1alpha1.CombatServiceClient) error) error {
	client, cleanup, err := createCombatClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return fn(ctx, client)
}
