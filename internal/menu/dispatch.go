package menu

type Kind int

const (
	// KindMenu means the walk ended inside the tree: prompt the node.
	KindMenu Kind = iota
	// KindAction means a terminal action was reached.
	KindAction
)

// Result of resolving a token history against the tree.
type Result struct {
	Kind Kind

	// Menu result
	Node *Node
	// Invalid is set when the final token matched nothing at Node. The
	// adapter prepends an error line to the prompt and does not advance.
	Invalid      bool
	InvalidToken string

	// Action result: the resolved ref plus any tokens that followed the
	// leaf, which become handler arguments.
	Action ActionRef
	Args   []string
}

// Resolve walks the full token history from the root. Sessions carry no
// stored state: USSD and voice gateways resend the accumulated path on
// every round trip, so recomputing the position here is the whole
// session model.
//
// Reserved tokens override node transitions: TokenExit ends the session
// at any depth, TokenBack moves to the parent (and is unknown at the
// root). Unknown tokens in the middle of the history are skipped; they
// were already flagged on the round trip that produced them.
func (t *Tree) Resolve(tokens []string) Result {
	cur := t.nodes[t.root]

	for i, tok := range tokens {
		last := i == len(tokens)-1

		if tok == TokenExit {
			return Result{
				Kind:   KindAction,
				Action: ActionRef{ID: ActionEndSession},
				Args:   tokens[i+1:],
			}
		}

		if tok == TokenBack {
			parent, ok := t.parents[cur.ID]
			if !ok {
				// Root has no parent: back behaves like an unknown option.
				if last {
					return Result{Node: cur, Invalid: true, InvalidToken: tok}
				}
				continue
			}
			cur = t.nodes[parent]
			continue
		}

		tr, ok := cur.lookup(tok)
		if !ok {
			if last {
				return Result{Node: cur, Invalid: true, InvalidToken: tok}
			}
			continue
		}

		if tr.Action != nil {
			return Result{
				Kind:   KindAction,
				Action: *tr.Action,
				Args:   tokens[i+1:],
			}
		}

		cur = t.nodes[tr.Node]
	}

	return Result{Kind: KindMenu, Node: cur}
}
