// Package socketlabs is a client for the SocketLabs Injection API.
//
// The client builds the injection request from the server ID and API key,
// serializes messages into the API's JSON schema, posts them to the fixed
// endpoint and decodes the PostResponse into a SendResult.
//
// # Usage
//
//	client, err := socketlabs.New(
//		os.Getenv("SOCKETLABS_SERVER_ID"),
//		os.Getenv("SOCKETLABS_API_KEY"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	msg := socketlabs.Message{
//		From:     socketlabs.NewAddress("team@example.com", "Team"),
//		Subject:  "Welcome",
//		TextBody: "Hello!",
//		HTMLBody: "<p>Hello!</p>",
//	}
//	msg.AddTo("user@example.com", "")
//
//	result, err := client.Send(ctx, msg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !result.Success {
//		log.Printf("%s: %v", result.ErrorCode, result.MessageErrors)
//	}
//
// Several messages can share one request with SendBatch.
//
// # Errors
//
// Every error returned by the client matches one of the sentinels below
// through errors.Is, and KindOf maps it to an ErrorKind:
//
//   - ErrConfig: empty or malformed credentials passed to New
//   - ErrValidation: message rejected locally, nothing was sent
//   - ErrTransport: the HTTP round trip failed (wraps the cause)
//   - ErrAPI: non-2xx status; use IsAPIError to get the status code and body
//   - ErrDecode: 2xx status with a body that is not valid JSON
//
// A 2xx response that reports a failure in its ErrorCode is not an error:
// the SendResult has Success == false and lists per-message problems in
// MessageErrors. Requests are never retried.
//
// # Testing
//
// Inject any HTTPDoer with WithHTTPClient, or point the client at the fake
// server from the socketlabstest package:
//
//	srv := socketlabstest.NewServer()
//	defer srv.Close()
//
//	client, _ := socketlabs.New("1", "key", socketlabs.WithEndpoint(srv.URL()))
package socketlabs
