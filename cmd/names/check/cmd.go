// Copyright 2025 Microsoft Corporation
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

package check

import (
	"context"

	"github.com/spf13/cobra"
)

func NewCommand() (*cobra.Command, error) {
	opts := DefaultCheckOptions()
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check generated names against a live subscription.",
		Long:  "Check that the target region exists and that globally-unique generated names are still available.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkNames(cmd.Context(), opts)
		},
	}
	if err := BindCheckOptions(opts, cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}

func checkNames(ctx context.Context, opts *RawCheckOptions) error {
	validated, err := opts.Validate()
	if err != nil {
		return err
	}
	completed, err := validated.Complete()
	if err != nil {
		return err
	}
	return completed.CheckNames(ctx)
}
