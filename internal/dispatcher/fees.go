package dispatcher

import (
	"context"
	"fmt"
	"math/big"

	"github.com/feral-file/ff-hotwallet/internal/domain"
	"github.com/feral-file/ff-hotwallet/internal/providers/ethereum"
	"github.com/feral-file/ff-hotwallet/internal/store/schema"
)

// Fees is the gas limit and price of a transfer
type Fees struct {
	Gas      *big.Int
	GasPrice *big.Int
}

// Total returns gas × gasPrice
func (f Fees) Total() *big.Int {
	return new(big.Int).Mul(f.Gas, f.GasPrice)
}

// ResolveFees uses the project coin overrides and asks the node for the ones set to "0".
// Anything unresolved yields domain.ErrFeeArgs.
func ResolveFees(ctx context.Context, gateway ethereum.Gateway, projectCoin *schema.ProjectCoin, contract string) (Fees, error) {
	gas, ok := override(projectCoin.Gas)
	if !ok {
		estimate, err := gateway.GetSmartFee(ctx, contract)
		if err != nil || estimate == nil || estimate.Sign() <= 0 {
			return Fees{}, fmt.Errorf("%w: gas: %v", domain.ErrFeeArgs, err)
		}
		gas = estimate
	}

	gasPrice, ok := override(projectCoin.GasPrice)
	if !ok {
		price, err := gateway.GasPrice(ctx)
		if err != nil || price == nil || price.Sign() <= 0 {
			return Fees{}, fmt.Errorf("%w: gas price: %v", domain.ErrFeeArgs, err)
		}
		gasPrice = price
	}

	return Fees{Gas: gas, GasPrice: gasPrice}, nil
}

// override parses a positive base-unit override; "0", empty and invalid values mean auto
func override(value string) (*big.Int, bool) {
	if value == "" || value == "0" {
		return nil, false
	}
	parsed, err := domain.ParseBaseUnits(value)
	if err != nil || parsed.Sign() <= 0 {
		return nil, false
	}
	return parsed, true
}
