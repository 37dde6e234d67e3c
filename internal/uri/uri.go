package uri

import (
	"fmt"
	"strings"
)

// DefaultIPFSGateway is used when no gateway is configured
const DefaultIPFSGateway = "https://ipfs.io"

// Rewriter converts metadata URIs into fetchable HTTPS URLs. Twin metadata
// documents are commonly pinned on IPFS, so ipfs:// URIs and foreign gateway
// URLs are rewritten to the configured gateway; plain HTTP(S) URLs pass
// through untouched.
type Rewriter struct {
	ipfsGateway string
}

// NewRewriter creates a rewriter targeting the given IPFS gateway
func NewRewriter(ipfsGateway string) *Rewriter {
	if ipfsGateway == "" {
		ipfsGateway = DefaultIPFSGateway
	}
	return &Rewriter{ipfsGateway: strings.TrimRight(ipfsGateway, "/")}
}

// Rewrite returns the fetchable URL for a metadata URI
func (r *Rewriter) Rewrite(uri string) (string, error) {
	if cid, ok := strings.CutPrefix(uri, "ipfs://"); ok {
		cid = strings.TrimPrefix(cid, "ipfs/")
		if cid == "" {
			return "", fmt.Errorf("ipfs URI carries no CID: %q", uri)
		}
		return fmt.Sprintf("%s/ipfs/%s", r.ipfsGateway, cid), nil
	}

	// Foreign gateway URL; pin the fetch to the configured gateway
	if parts := strings.SplitN(uri, "/ipfs/", 2); len(parts) == 2 && parts[1] != "" &&
		(strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://")) {
		return fmt.Sprintf("%s/ipfs/%s", r.ipfsGateway, parts[1]), nil
	}

	if strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://") {
		return uri, nil
	}

	return "", fmt.Errorf("unsupported URI scheme: %q", uri)
}
