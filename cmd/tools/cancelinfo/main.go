package main

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"brokerclient/internal/adapter"

	"github.com/bytedance/sonic"
	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"
)

type options struct {
	OrderID        int64
	CancelTime     string
	ExtOperator    string
	ExternalUserID string
	Indicator      string
	JSON           bool
}

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		logs.Errorf("parse options, err: %+v", err)
		os.Exit(2)
	}

	req, err := buildRequest(opts)
	if err != nil {
		logs.Errorf("build cancel request, err: %+v", err)
		os.Exit(1)
	}

	if !opts.JSON {
		logs.Infof("order %d: %s", req.OrderID, req.Cancel)
		return
	}

	payload, err := renderJSON(req)
	if err != nil {
		logs.Errorf("render json, err: %+v", err)
		os.Exit(1)
	}
	logs.Info(string(payload))
}

func parseOptions(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("cancelinfo", flag.ContinueOnError)
	fs.Int64Var(&opts.OrderID, "order-id", 0, "Order id to cancel")
	fs.StringVar(&opts.CancelTime, "cancel-time", "", "Manual order cancel time")
	fs.StringVar(&opts.ExtOperator, "ext-operator", "", "External operator id")
	fs.StringVar(&opts.ExternalUserID, "external-user-id", "", "External user id")
	fs.StringVar(&opts.Indicator, "indicator", "", "Manual order indicator (empty=unset)")
	fs.BoolVar(&opts.JSON, "json", false, "Print the cancel request as json")
	if err := fs.Parse(args); err != nil {
		return options{}, errors.Wrap(err, "parse flags")
	}

	return opts, nil
}

func parseIndicator(s string) (int32, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return adapter.UnsetInt, nil
	}

	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "indicator: %q", s)
	}

	return int32(v), nil
}

func buildRequest(opts options) (adapter.CancelRequest, error) {
	indicator, err := parseIndicator(opts.Indicator)
	if err != nil {
		return adapter.CancelRequest{}, err
	}

	cancel := adapter.NewOrderCancelWith(opts.CancelTime, opts.ExtOperator, opts.ExternalUserID, indicator)
	return adapter.NewCancelRequest(opts.OrderID, cancel), nil
}

type cancelView struct {
	OrderID               int64  `json:"orderId"`
	ManualOrderCancelTime string `json:"manualOrderCancelTime"`
	ExtOperator           string `json:"extOperator"`
	ExternalUserID        string `json:"externalUserId"`
	ManualOrderIndicator  *int32 `json:"manualOrderIndicator"`
}

// renderJSON writes the sentinel indicator as null.
func renderJSON(req adapter.CancelRequest) ([]byte, error) {
	view := cancelView{
		OrderID:               req.OrderID,
		ManualOrderCancelTime: req.Cancel.ManualOrderCancelTime(),
		ExtOperator:           req.Cancel.ExtOperator(),
		ExternalUserID:        req.Cancel.ExternalUserID(),
	}
	if req.Cancel.HasManualOrderIndicator() {
		indicator := req.Cancel.ManualOrderIndicator()
		view.ManualOrderIndicator = &indicator
	}

	return sonic.ConfigFastest.Marshal(view)
}
