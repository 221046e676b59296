package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/nodisys/netbanx-gateway/internal/gateway"
	"github.com/nodisys/netbanx-gateway/internal/persistence/postgres"
	"github.com/nodisys/netbanx-gateway/internal/persistence/postgres/testhelpers"
)

type StoreTestSuite struct {
	suite.Suite
	testDB       *testhelpers.TestDatabase
	logStore     *postgres.LogStore
	receiptStore *postgres.ReceiptStore
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (suite *StoreTestSuite) SetupSuite() {
	suite.testDB = testhelpers.SetupTestDatabase(suite.T())
	suite.logStore = postgres.NewLogStore(suite.testDB.Pool)
	suite.receiptStore = postgres.NewReceiptStore(suite.testDB.Pool)
}

func (suite *StoreTestSuite) TearDownSuite() {
	suite.testDB.Cleanup(suite.T())
}

func (suite *StoreTestSuite) SetupTest() {
	suite.testDB.CleanTables(suite.T())
}

func (suite *StoreTestSuite) Test_LogStore_AppendAndFind() {
	ctx := context.Background()
	t := suite.T()

	base := time.Now().UTC().Truncate(time.Millisecond)
	entries := []gateway.LogEntry{
		{
			TransactionRef: "INV-1001",
			Timestamp:      base,
			Category:       "charge request",
			Payload:        map[string]any{"amount": "25.00", "credit_card_number": "**** **** **** 1111"},
			ClientIP:       "192.0.2.10",
		},
		{
			TransactionRef: "INV-1001",
			Timestamp:      base.Add(time.Second),
			Category:       "gateway response",
			Payload:        map[string]any{"Status": "DECLINED"},
			Failed:         true,
			ClientIP:       "192.0.2.10",
		},
	}
	for _, entry := range entries {
		require.NoError(t, suite.logStore.Append(ctx, entry))
	}

	found, err := suite.logStore.FindByRef(ctx, "INV-1001")
	require.NoError(t, err)
	require.Len(t, found, 2)

	suite.Equal("charge request", found[0].Category)
	suite.False(found[0].Failed)
	suite.Equal("25.00", found[0].Payload["amount"])
	suite.Equal("gateway response", found[1].Category)
	suite.True(found[1].Failed)
	suite.Equal("192.0.2.10", found[1].ClientIP)
}

func (suite *StoreTestSuite) Test_LogStore_FindByRef_Empty() {
	found, err := suite.logStore.FindByRef(context.Background(), "no-such-ref")
	suite.NoError(err)
	suite.Empty(found)
}

func (suite *StoreTestSuite) Test_ReceiptStore_SaveAndFind() {
	ctx := context.Background()
	t := suite.T()

	rec := gateway.ReceiptRecord{
		TransactionRef: "123456",
		Receipt:        "CREDIT CARD TRANSACTION RECORD\n\nTRANSACTION APPROVED - THANK YOU",
		FirstName:      "Marie",
		LastName:       "Tremblay",
		CardType:       "Visa",
		MaskedCard:     "**** **** **** 1111",
		Timestamp:      time.Now().UTC(),
		ClientIP:       "192.0.2.10",
	}
	require.NoError(t, suite.receiptStore.Save(ctx, rec))

	receipt, err := suite.receiptStore.FindByRef(ctx, "123456")
	require.NoError(t, err)
	suite.Equal(rec.Receipt, receipt)
}

func (suite *StoreTestSuite) Test_ReceiptStore_SaveIsUpsert() {
	ctx := context.Background()
	t := suite.T()

	rec := gateway.ReceiptRecord{
		TransactionRef: "123456",
		Receipt:        "first rendering",
		Timestamp:      time.Now().UTC(),
	}
	require.NoError(t, suite.receiptStore.Save(ctx, rec))

	rec.Receipt = "second rendering"
	require.NoError(t, suite.receiptStore.Save(ctx, rec))

	receipt, err := suite.receiptStore.FindByRef(ctx, "123456")
	require.NoError(t, err)
	suite.Equal("second rendering", receipt)
}

func (suite *StoreTestSuite) Test_ReceiptStore_NotFound() {
	_, err := suite.receiptStore.FindByRef(context.Background(), "missing")
	suite.ErrorIs(err, postgres.ErrReceiptNotFound)
}
