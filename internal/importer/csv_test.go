package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/phone-resale/internal/importer"
	domain "github.com/donaldgifford/phone-resale/pkg/types"
)

func TestParseCSV(t *testing.T) {
	t.Parallel()

	input := "model,brand,base_price,stock,condition,specs\n" +
		"iPhone 12,Apple,300,4,New,128GB\n" +
		"Pixel 7,Google,199.99,0,good,\n" +
		"\"Galaxy S21, Ultra\",Samsung,45.5,2, Scrap ,cracked back\n"

	phones, err := importer.ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, phones, 3)

	assert.Equal(t, domain.Phone{
		Model:     "iPhone 12",
		Brand:     "Apple",
		BasePrice: 300,
		Stock:     4,
		Condition: domain.ConditionNew,
		Specs:     "128GB",
	}, phones[0])

	assert.Equal(t, domain.ConditionGood, phones[1].Condition)
	assert.Equal(t, domain.DefaultSpecs, phones[1].Specs)
	assert.Zero(t, phones[1].Stock)

	assert.Equal(t, "Galaxy S21, Ultra", phones[2].Model)
	assert.Equal(t, domain.ConditionScrap, phones[2].Condition)
	assert.Zero(t, phones[2].ID, "ids are assigned by the store")
}

func TestParseCSV_HeaderVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "reordered columns without specs",
			input: "condition,stock,base_price,brand,model\nGood,1,80,Nokia,3310\n",
		},
		{
			name:  "uppercase header",
			input: "MODEL,Brand,Base_Price,STOCK,Condition\n3310,Nokia,80,1,Good\n",
		},
		{
			name:  "byte order mark",
			input: "\ufeffmodel,brand,base_price,stock,condition\n3310,Nokia,80,1,Good\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			phones, err := importer.ParseCSV(strings.NewReader(tt.input))
			require.NoError(t, err)
			require.Len(t, phones, 1)
			assert.Equal(t, "3310", phones[0].Model)
			assert.Equal(t, "Nokia", phones[0].Brand)
			assert.InDelta(t, 80.0, phones[0].BasePrice, 0.0001)
			assert.Equal(t, domain.DefaultSpecs, phones[0].Specs)
		})
	}
}

func TestParseCSV_Errors(t *testing.T) {
	t.Parallel()

	const header = "model,brand,base_price,stock,condition\n"

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "empty input", input: "", wantErr: "missing header row"},
		{name: "missing columns", input: "model,brand\nA,B\n", wantErr: "missing columns: base_price, stock, condition"},
		{name: "duplicate column", input: "model,model,brand,base_price,stock,condition\n", wantErr: `duplicate column "model"`},
		{name: "bad price", input: header + "A,B,cheap,1,New\n", wantErr: `line 2: base_price "cheap" is not a number`},
		{name: "bad stock", input: header + "A,B,10,1.5,New\n", wantErr: `line 2: stock "1.5" is not an integer`},
		{name: "unknown condition", input: header + "A,B,10,1,Mint\n", wantErr: `line 2: unknown condition "Mint"`},
		{name: "non-positive price", input: header + "A,B,10,1,New\nC,D,0,1,New\n", wantErr: "line 3: invalid phone"},
		{name: "negative stock", input: header + "A,B,10,-3,New\n", wantErr: "stock must not be negative"},
		{name: "ragged row", input: header + "A,B,10,1\n", wantErr: "wrong number of fields"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			phones, err := importer.ParseCSV(strings.NewReader(tt.input))
			require.ErrorIs(t, err, importer.ErrInvalidCSV)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Nil(t, phones)
		})
	}
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	t.Parallel()

	phones, err := importer.ParseCSV(strings.NewReader("model,brand,base_price,stock,condition\n"))
	require.NoError(t, err)
	assert.Empty(t, phones)
}
