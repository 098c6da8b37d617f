// Command matchctl is a one-shot CLI exerciser for a running matchd,
// the gRPC successor to the raw-TCP exchange client this repository used
// to ship. It keeps the same flag surface (-server, -owner, -side,
// -type, -price, -qty) but dials SubmitOrder instead of hand-rolling a
// binary wire message.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"matchd/transport/matchpb"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func main() {
	serverAddr := flag.String("server", "127.0.0.1:50051", "address of the matchd gRPC listener")
	owner := flag.String("owner", "", "owner username (compulsory)")
	sideStr := flag.String("side", "buy", "order side: 'buy' or 'sell'")
	typeStr := flag.String("type", "limit", "order type: 'limit' or 'market'")
	price := flag.Int64("price", 100, "limit price (ignored for market orders)")
	qty := flag.Uint64("qty", 10, "order quantity")
	timeout := flag.Duration("timeout", 5*time.Second, "RPC deadline")
	flag.Parse()

	if *owner == "" {
		fmt.Println("Error: -owner is compulsory.")
		flag.Usage()
		os.Exit(1)
	}

	conn, err := grpc.NewClient(*serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		fmt.Printf("failed to dial %s: %v\n", *serverAddr, err)
		os.Exit(1)
	}
	defer conn.Close()

	client := matchpb.NewOrderMatchingClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	resp, err := client.SubmitOrder(ctx, &matchpb.OrderRequest{
		UserID:    *owner,
		Side:      strings.ToLower(*sideStr),
		OrderType: strings.ToLower(*typeStr),
		Price:     *price,
		Quantity:  *qty,
	})
	if err != nil {
		fmt.Printf("submit order failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("-> Sent %s %s order for %s: qty=%d price=%d\n",
		strings.ToUpper(*sideStr), strings.ToUpper(*typeStr), *owner, *qty, *price)
	if len(resp.Trades) == 0 {
		fmt.Println("No immediate fills; order is resting or was discarded.")
		return
	}
	for _, trade := range resp.Trades {
		fmt.Printf("[EXECUTION] qty=%d price=%d buyer=%s seller=%s at=%s\n",
			trade.Quantity, trade.Price, trade.Buyer, trade.Seller, trade.Timestamp)
	}
}
