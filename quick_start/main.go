package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/kingsmao/bittrex-connector/pkg/config"
	"github.com/kingsmao/bittrex-connector/pkg/logger"
	"github.com/kingsmao/bittrex-connector/pkg/schema"
	"github.com/kingsmao/bittrex-connector/pkg/sdk"
)

func usage() {
	fmt.Fprintf(os.Stderr, "用法: quick_start [-config file] [-env file] <operation> [args...]\n\n")
	fmt.Fprintf(os.Stderr, "operations:\n")
	for _, op := range sdk.Operations() {
		kind := "public "
		if sdk.IsPrivate(op) {
			kind = "private"
		}
		fmt.Fprintf(os.Stderr, "  %-22s %s %s\n", op, kind, strings.Join(sdk.ArgNames(op), " "))
	}
	flag.PrintDefaults()
}

func main() {
	configPath := flag.String("config", "", "YAML config file")
	envPath := flag.String("env", ".env", "dotenv file with BITTREX_API_KEY / BITTREX_API_SECRET")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath, *envPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}
	logger.Init()
	if err := logger.Configure(cfg.LoggerOptions()); err != nil {
		fmt.Fprintf(os.Stderr, "日志配置失败: %v\n", err)
		os.Exit(1)
	}

	clientCfg, err := cfg.ClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "客户端配置失败: %v\n", err)
		os.Exit(1)
	}
	client := sdk.New(clientCfg, sdk.WithBaseURL(cfg.BaseURL), sdk.WithTimeout(cfg.Timeout))
	defer client.Close()

	operation := strings.ToLower(flag.Arg(0))
	names := sdk.ArgNames(operation)
	values := flag.Args()[1:]
	if len(values) > len(names) {
		fmt.Fprintf(os.Stderr, "%s 最多接受 %d 个参数: %s\n", operation, len(names), strings.Join(names, " "))
		os.Exit(2)
	}
	args := make([]schema.Param, 0, len(values))
	for i, v := range values {
		if names[i] == "market" {
			if v, err = schema.MarketName(v); err != nil {
				fmt.Fprintf(os.Stderr, "市场参数错误: %v\n", err)
				os.Exit(2)
			}
		}
		args = append(args, schema.Param{Name: names[i], Value: v})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := client.Call(ctx, operation, args...)
	if err != nil {
		var remote *schema.RemoteAPIError
		var transport *schema.TransportError
		switch {
		case errors.As(err, &remote):
			fmt.Fprintf(os.Stderr, "交易所返回错误: %s\n", remote.Message)
		case errors.As(err, &transport):
			fmt.Fprintf(os.Stderr, "网络错误: %v\n", transport)
		default:
			fmt.Fprintf(os.Stderr, "请求失败: %v\n", err)
		}
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "输出失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
