package entities

import "fmt"

const commentTemplate = `Hello, and thanks for your contribution!

%s

Once you have done everything that's needed, please reply here and someone
will verify everything is in order.
`

const notSignedBody = `Unfortunately our records indicate you have not signed a
Contributor License Agreement (CLA). For legal reasons we need you to sign
this before we can look at your contribution.`

const usernameNotFoundBody = `Unfortunately we couldn't find your GitHub username
in our CLA records. If you have not registered yet, please do so and make sure
to add your GitHub username to your account. And in case you haven't already,
please make sure to sign the Contributor License Agreement (CLA); we can't
legally look at your contribution until you have signed it.`

// CommentBody returns the comment text for a CLA status. A signed PR never
// gets a comment, reported by ok == false.
func CommentBody(status CLAStatus) (text string, ok bool) {
	switch status {
	case StatusNotSigned:
		return fmt.Sprintf(commentTemplate, notSignedBody), true
	case StatusUsernameNotFound:
		return fmt.Sprintf(commentTemplate, usernameNotFoundBody), true
	default:
		return "", false
	}
}
