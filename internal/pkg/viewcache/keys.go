package viewcache

import "fmt"

// Rendered active-order list per workspace:
// views:orders:{workspace_id} -> JSON array of orders
const keyOrders = "views:orders:%s"

func ordersKey(workspaceID string) string {
	return fmt.Sprintf(keyOrders, workspaceID)
}
