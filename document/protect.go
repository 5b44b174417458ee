// seehuhn.de/go/prepress - composing print-ready PDF files
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package document

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/xdg-go/stringprep"

	"seehuhn.de/go/prepress/pdf"
)

// Permissions lists the operations allowed to users who open a protected
// document with the user password.  The zero value denies everything.
type Permissions struct {
	Print    bool // print the document, at full quality
	Modify   bool // modify the contents
	Extract  bool // copy text and graphics
	Assemble bool // insert, rotate or delete pages
	Annotate bool // add annotations and fill in forms
}

// PDF 2.0 sections: 7.6.4.2

// P returns the value of the /P entry of the encryption dictionary.
func (perm Permissions) P() int32 {
	// Bits 7-8 and 13-32 are reserved and must be set.
	p := uint32(0xFFFFF0C0)
	if perm.Print {
		p |= 1<<2 | 1<<11
	}
	if perm.Modify {
		p |= 1 << 3
	}
	if perm.Extract {
		p |= 1<<4 | 1<<9
	}
	if perm.Annotate {
		p |= 1<<5 | 1<<8
	}
	if perm.Assemble {
		p |= 1 << 10
	}
	return int32(p)
}

type policy struct {
	user, owner string
	perm        Permissions
}

var errNoPassword = errors.New("no password given")

// Protect records a password protection policy for the document.
// The document is encrypted using AES-256 when it is serialized.
//
// Passwords are normalized using SASLprep.  If ownerPW is empty, the user
// password is used as the owner password.
func (doc *Document) Protect(ownerPW, userPW string, perm Permissions) error {
	if err := doc.checkOpen("Protect"); err != nil {
		return err
	}

	user, err := stringprep.SASLprep.Prepare(userPW)
	if err != nil {
		return &pdf.ResourceError{Op: "Protect", Err: fmt.Errorf("user password: %w", err)}
	}
	owner := user
	if ownerPW != "" {
		owner, err = stringprep.SASLprep.Prepare(ownerPW)
		if err != nil {
			return &pdf.ResourceError{Op: "Protect", Err: fmt.Errorf("owner password: %w", err)}
		}
	}
	if owner == "" {
		return &pdf.ResourceError{Op: "Protect", Err: errNoPassword}
	}

	doc.policy = &policy{user: user, owner: owner, perm: perm}
	return nil
}

// encrypt applies the policy to an unencrypted PDF file.
func (pol *policy) encrypt(plain []byte) ([]byte, error) {
	conf := model.NewAESConfiguration(pol.user, pol.owner, 256)
	conf.Permissions = model.PermissionFlags(pol.perm.P())

	out := &bytes.Buffer{}
	err := api.Encrypt(bytes.NewReader(plain), out, conf)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}
	return out.Bytes(), nil
}
