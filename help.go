// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

// shellHelp is shown by the `help` command inside the interactive shell.
const shellHelp = `# Shell commands

| Command | Effect |
|---|---|
| ` + "`put <items...>`" + ` | insert items, duplicates go right |
| ` + "`del <items...>`" + ` | delete one node per item |
| ` + "`find <item>`" + ` | report whether the item is present |
| ` + "`clear`" + ` | drop the whole tree |
| ` + "`help`" + ` | show this page |

Quote items that contain spaces: ` + "`put 'new york' paris`" + `.

**Keys:** ` + "`enter`" + ` runs a command, ` + "`ctrl+y`" + ` copies the in-order items,
` + "`pgup`/`pgdown`" + ` scroll, ` + "`esc`" + ` quits.
`

func getUsageMessage() string {
	message := fmt.Sprintf(`

 **bstree %s**

An unbalanced binary search tree you can build, inspect and edit from the shell.

Built with Go %s

# 1. Commands
* **demo** builds the tree 10, 3, 19, 14, prints it, deletes 10 and prints it again
* **build** inserts items from arguments, --items or --file, applies --delete and prints the result
* **shell** opens an interactive editor over a single tree
* **settings** shows (and creates) ~/.bstree.yaml
* **version** prints the version

# 2. Ordering
* Smaller items go left, everything else (equal items included) goes right
* Deleting a node with two children moves its in-order predecessor up
* There is no rebalancing: sorted input builds a list, watch the height

# 3. Item kinds
* int, float or string, chosen with --kind or tree.item_kind in the config

# Examples
* bstree build 10 3 19 14 --delete 10 --diagram
* bstree build --kind string --items "pear 'passion fruit' apple"
* bstree shell --kind float

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
