package authctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/metadata"
)

type AuthCtxTestSuite struct {
	suite.Suite
}

func (s *AuthCtxTestSuite) TestFromIncoming() {
	s.Run("header present", func() {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(AccountIDHeader, " acct-dm "))
		got, err := FromIncoming(ctx)
		s.Require().NoError(err)
		s.Equal("acct-dm", AccountID(got))
	})

	s.Run("anonymous call passes through", func() {
		got, err := FromIncoming(context.Background())
		s.Require().NoError(err)
		s.Empty(AccountID(got))
	})

	s.Run("blank header is anonymous", func() {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(AccountIDHeader, "  "))
		got, err := FromIncoming(ctx)
		s.Require().NoError(err)
		s.Empty(AccountID(got))
	})
}

func (s *AuthCtxTestSuite) TestOutgoingWithAccountID() {
	ctx := OutgoingWithAccountID(context.Background(), "acct-aria")
	md, ok := metadata.FromOutgoingContext(ctx)
	s.Require().True(ok)
	s.Equal([]string{"acct-aria"}, md.Get(AccountIDHeader))

	bare := OutgoingWithAccountID(context.Background(), "")
	_, ok = metadata.FromOutgoingContext(bare)
	s.False(ok)
}

func TestAuthCtxSuite(t *testing.T) {
	suite.Run(t, new(AuthCtxTestSuite))
}
